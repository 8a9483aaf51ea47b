// Package wheel holds the prize catalog and the spin resolution math.
// Resolution is deterministic given the drawn rotation so outcomes can be
// verified independently of the browser animation.
package wheel

import (
	"fmt"
	"math"
	"math/rand"
)

// Prize is one segment of the wheel.
type Prize struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Prizes is the static ordered segment-to-prize mapping. Segment i spans
// [i*SegmentAngle, (i+1)*SegmentAngle) degrees clockwise from the top.
var Prizes = []Prize{
	{Name: "iPhone 16", Icon: "📱", Color: "#000000"},
	{Name: "Gold Watch", Icon: "⌚", Color: "#FFD700"},
	{Name: "$500 Cash", Icon: "💰", Color: "#22C55E"},
	{Name: "$1000 Cash", Icon: "💰", Color: "#10B981"},
	{Name: "Diamond Ring", Icon: "💎", Color: "#8B5CF6"},
	{Name: "Try Again", Icon: "❌", Color: "#EF4444"},
	{Name: "Teddy Bear", Icon: "🧸", Color: "#F59E0B"},
	{Name: "VIP Package", Icon: "🚀", Color: "#EC4899"},
}

// Spin rotation bounds: every spin adds 5 to 8 full turns.
const (
	MinRotation  = 1800.0
	RotationSpan = 1080.0
)

// SegmentAngle is the arc of one prize segment in degrees.
func SegmentAngle() float64 {
	return 360.0 / float64(len(Prizes))
}

// SpinOffset draws a uniform random rotation offset in [MinRotation,
// MinRotation+RotationSpan) from the injected source.
func SpinOffset(r *rand.Rand) float64 {
	return MinRotation + r.Float64()*RotationSpan
}

// Resolve maps a cumulative rotation to the landed prize index. The wheel
// turns clockwise under a fixed pointer at the top, so direction is
// inverted before flooring; the half-segment offset resolves exact
// boundary ties.
func Resolve(totalRotation float64) int {
	n := len(Prizes)
	normalized := math.Mod(totalRotation, 360)
	if normalized < 0 {
		normalized += 360
	}
	segment := SegmentAngle()
	return int(math.Floor((360-normalized+segment/2)/segment)) % n
}

// Label is the display string for a prize, matching the success modal copy.
func Label(p Prize) string {
	return p.Icon + " " + p.Name
}

// RandomPrize picks a uniformly random prize label from the injected source.
func RandomPrize(r *rand.Rand) string {
	return Label(Prizes[r.Intn(len(Prizes))])
}

// SegmentPath returns the SVG path data for segment index in a 100x100
// viewBox centered at (50,50).
func SegmentPath(index int) string {
	segment := SegmentAngle()
	startAngle := float64(index) * segment
	endAngle := startAngle + segment

	const centerX, centerY, radius = 50.0, 50.0, 50.0

	x1 := centerX + radius*math.Cos(startAngle*math.Pi/180)
	y1 := centerY + radius*math.Sin(startAngle*math.Pi/180)
	x2 := centerX + radius*math.Cos(endAngle*math.Pi/180)
	y2 := centerY + radius*math.Sin(endAngle*math.Pi/180)

	largeArc := 0
	if segment > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %.3f %.3f L %.3f %.3f A %.3f %.3f 0 %d 1 %.3f %.3f Z",
		centerX, centerY, x1, y1, radius, radius, largeArc, x2, y2)
}

// LabelPosition returns the (x, y) anchor and rotation angle for text drawn
// at the given fraction of the radius inside segment index.
func LabelPosition(index int, radiusFraction float64) (x, y, angle float64) {
	segment := SegmentAngle()
	angle = float64(index)*segment + segment/2
	rad := angle * math.Pi / 180
	x = 50 + 50*radiusFraction*math.Cos(rad)
	y = 50 + 50*radiusFraction*math.Sin(rad)
	// Flip labels on the left half so they stay readable.
	if angle > 90 && angle < 270 {
		angle += 180
	}
	return x, y, angle
}
