package cpu

const (
	REGISTER_COUNT = 8    // Number of general purpose registers.
	MEMORY_SIZE    = 2048 // Number of memory cells.
)

// Arena hands out data regions from the bottom of memory.
// The cursor only moves forward and a name is never allocated twice.
type Arena struct {
	Next  int            // First free memory cell.
	Label map[string]int // Map of data labels to base addresses.
}

// Lookup returns the base address of a data label.
func (ar *Arena) Lookup(name string) (address int, err error) {
	address, ok := ar.Label[name]
	if !ok {
		err = ErrDataLabelMissing(name)
		return
	}

	return
}

// Allocate reserves len(values) cells for name and writes the values
// through store. Values written before memory runs out stay written.
func (ar *Arena) Allocate(name string, values []int32, store func(address int, value int32) error) (err error) {
	if _, ok := ar.Label[name]; ok {
		err = ErrDataLabelDuplicate(name)
		return
	}

	if ar.Label == nil {
		ar.Label = make(map[string]int, 16)
	}
	ar.Label[name] = ar.Next

	for _, value := range values {
		if ar.Next >= MEMORY_SIZE {
			err = ErrMemoryExhausted
			return
		}
		err = store(ar.Next, value)
		if err != nil {
			return
		}
		ar.Next++
	}

	return
}

// Reset forgets every allocation.
func (ar *Arena) Reset() {
	ar.Next = 0
	clear(ar.Label)
}
