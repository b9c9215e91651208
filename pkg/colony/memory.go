package colony

// memoryDepth is how many recent cells an ant refuses to step back onto.
const memoryDepth = 3

// memory is a fixed ring of the last visited cells, oldest evicted first.
type memory struct {
	slots [memoryDepth]Position
	next  int
}

// newMemory fills every slot with the spawn cell.
func newMemory(p Position) memory {
	var m memory
	for i := range m.slots {
		m.slots[i] = p
	}
	return m
}

func (m *memory) push(p Position) {
	m.slots[m.next] = p
	m.next = (m.next + 1) % memoryDepth
}

func (m *memory) contains(p Position) bool {
	for _, s := range m.slots {
		if s == p {
			return true
		}
	}
	return false
}

// positions lists the remembered cells from oldest to newest.
func (m *memory) positions() []Position {
	out := make([]Position, 0, memoryDepth)
	for i := 0; i < memoryDepth; i++ {
		out = append(out, m.slots[(m.next+i)%memoryDepth])
	}
	return out
}
