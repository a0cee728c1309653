package seasons

// segment is a fixed line segment in logical coordinates.
type segment struct {
	x1, y1, x2, y2 int
}

// polyline is a group of segments sharing one color.
type polyline struct {
	color    Color
	segments []segment
}

var house = []polyline{
	{ // walls
		color: ColorYellow,
		segments: []segment{
			{300, 200, 500, 200},
			{300, 200, 300, 350},
			{500, 200, 500, 350},
			{300, 350, 500, 350},
		},
	},
	{ // roof
		color: ColorRed,
		segments: []segment{
			{280, 350, 520, 350},
			{280, 350, 400, 450},
			{520, 350, 400, 450},
		},
	},
	{ // door
		color: Color{0.4, 0.2, 0.1},
		segments: []segment{
			{370, 200, 370, 275},
			{430, 200, 430, 275},
			{370, 275, 430, 275},
		},
	},
}

var barkColor = Color{0.55, 0.27, 0.07}

var treeTrunk = []segment{
	{700, 200, 700, 400},
	{720, 200, 720, 400},
	{700, 400, 720, 400},
}

var treeBranches = []segment{
	{710, 400, 660, 450},
	{710, 400, 760, 450},
	{710, 450, 670, 500},
	{710, 450, 750, 500},
	{710, 500, 680, 550},
	{710, 500, 740, 550},
	// outer twigs
	{660, 450, 640, 500}, {760, 450, 780, 500},
	{670, 500, 650, 550}, {750, 500, 770, 550},
	{680, 550, 660, 600}, {740, 550, 760, 600},
	{710, 550, 710, 650},
}

// foliageAnchors are the branch tips each grown into a cluster of stamps.
var foliageAnchors = []Point{
	{660, 450}, {760, 450}, {670, 500}, {750, 500},
	{680, 550}, {740, 550}, {710, 550},
	{640, 500}, {780, 500}, {650, 550}, {770, 550},
	{660, 600}, {760, 600}, {710, 650},
}

const (
	clusterRadius = 15
	clusterStep   = 5
	looseStamps   = 100
)

var (
	stampRadius  = IntRange{2, 5}
	canopyXRange = IntRange{640, 780}
	canopyYRange = IntRange{500, 650}
)

// clusterOffsets lists the grid offsets within clusterRadius of an anchor.
var clusterOffsets = func() []Point {
	var out []Point
	for dx := -clusterRadius; dx <= clusterRadius; dx += clusterStep {
		for dy := -clusterRadius; dy <= clusterRadius; dy += clusterStep {
			if dx*dx+dy*dy <= clusterRadius*clusterRadius {
				out = append(out, Point{dx, dy})
			}
		}
	}
	return out
}()

// FoliageColor returns the tree leaf color for season s.
func FoliageColor(s Season) Color {
	switch s {
	case Fall:
		return Color{1.0, 0.647, 0.0}
	case Winter:
		return ColorWhite
	default:
		return Color{0.1, 0.5, 0.1}
	}
}

func (r *Rasterizer) drawSegments(segs []segment) {
	for _, s := range segs {
		r.DrawLine(s.x1, s.y1, s.x2, s.y2)
	}
}

func (rd *Renderer) drawHouse() {
	for _, part := range house {
		rd.raster.SetColor(part.color)
		rd.raster.drawSegments(part.segments)
	}
}

func (rd *Renderer) drawTree(leaf Color) {
	rd.raster.SetColor(barkColor)
	rd.raster.drawSegments(treeTrunk)
	rd.raster.drawSegments(treeBranches)

	rd.raster.SetColor(leaf)
	for _, a := range foliageAnchors {
		for _, o := range clusterOffsets {
			rd.raster.DrawCircle(a.X+o.X, a.Y+o.Y, stampRadius.Random(rd.rng))
		}
	}
	for i := 0; i < looseStamps; i++ {
		x := canopyXRange.Random(rd.rng)
		y := canopyYRange.Random(rd.rng)
		rd.raster.DrawCircle(x, y, stampRadius.Random(rd.rng))
	}
}
