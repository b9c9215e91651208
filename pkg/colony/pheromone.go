package colony

// Vec is a 2-D direction.
type Vec struct {
	X, Y float32
}

// Pheromone is the scent stored in one cell.
type Pheromone struct {
	Intensity float32
	Direction Vec
}

// Field is the grid of pheromone cells. A cell at or below the decay
// threshold is never stored.
type Field struct {
	width, height int
	cells         []Pheromone
	present       []bool
	factor        float32
	threshold     float32
	count         int
}

// NewField creates an empty field that decays by factor each tick.
func NewField(width, height int, factor, threshold float32) *Field {
	return &Field{
		width:     width,
		height:    height,
		cells:     make([]Pheromone, width*height),
		present:   make([]bool, width*height),
		factor:    factor,
		threshold: threshold,
	}
}

func (f *Field) index(x, y int) (int, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, false
	}
	return y*f.width + x, true
}

// Deposit replaces the cell at (x, y). Out of range is a no-op.
func (f *Field) Deposit(x, y int, dir Vec, intensity float32) {
	i, ok := f.index(x, y)
	if !ok {
		return
	}
	if intensity <= f.threshold {
		f.clear(i)
		return
	}
	if !f.present[i] {
		f.count++
	}
	f.cells[i] = Pheromone{Intensity: intensity, Direction: dir}
	f.present[i] = true
}

func (f *Field) clear(i int) {
	if f.present[i] {
		f.present[i] = false
		f.cells[i] = Pheromone{}
		f.count--
	}
}

// Decay fades every present cell once and drops the ones that fall to the threshold.
func (f *Field) Decay() {
	for i := range f.cells {
		if !f.present[i] {
			continue
		}
		next := f.cells[i].Intensity * f.factor
		if next <= f.threshold {
			f.clear(i)
			continue
		}
		f.cells[i].Intensity = next
	}
}

// At returns the cell at (x, y) and whether it holds any scent.
func (f *Field) At(x, y int) (Pheromone, bool) {
	i, ok := f.index(x, y)
	if !ok || !f.present[i] {
		return Pheromone{}, false
	}
	return f.cells[i], true
}

// HasSignificant reports whether (x, y) holds scent above the threshold.
func (f *Field) HasSignificant(x, y int) bool {
	p, ok := f.At(x, y)
	return ok && p.Intensity > f.threshold
}

// DirectionAt returns the trail direction stored at (x, y), if any.
func (f *Field) DirectionAt(x, y int) (Vec, bool) {
	p, ok := f.At(x, y)
	return p.Direction, ok
}

// Len is the number of cells currently holding scent.
func (f *Field) Len() int { return f.count }

// Each calls fn for every present cell in row-major order.
func (f *Field) Each(fn func(x, y int, p Pheromone)) {
	for i, ok := range f.present {
		if ok {
			fn(i%f.width, i/f.width, f.cells[i])
		}
	}
}
