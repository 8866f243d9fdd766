package canvas

import (
	"math"

	"github.com/mcherring7/topology-weaver/internal/domain"
)

// HubAnchor is one of the two fixed aggregation targets all connection
// curves terminate at.
type HubAnchor struct {
	Kind   domain.HubKind
	Center Point
	Size   float64 // square icon edge, px
}

// hubAnchors returns the Internet and MPLS anchors for the given dimensions.
// At nominal density the Internet hub sits at a third of the canvas height
// and the MPLS hub at two thirds, both horizontally centered; as density
// grows the vertical spread shrinks toward the center with the same scale the
// nodes use. An unmeasured canvas yields zero-extent anchors so the hub layer
// still renders.
func hubAnchors(width, height, scale float64, layout Layout) [2]HubAnchor {
	if width <= 0 || height <= 0 {
		return [2]HubAnchor{
			{Kind: domain.HubInternet},
			{Kind: domain.HubMPLS},
		}
	}

	size := layout.HubFraction * math.Min(width, height) * scale
	if size < layout.HubMinPx {
		size = layout.HubMinPx
	}
	spread := height / 6 * scale

	return [2]HubAnchor{
		{Kind: domain.HubInternet, Center: Point{X: width / 2, Y: height/2 - spread}, Size: size},
		{Kind: domain.HubMPLS, Center: Point{X: width / 2, Y: height/2 + spread}, Size: size},
	}
}

// anchorFor picks the anchor a connection terminates at.
func anchorFor(kind domain.HubKind, anchors [2]HubAnchor) HubAnchor {
	if kind == domain.HubMPLS {
		return anchors[1]
	}
	return anchors[0]
}
