package buffer

// Buffer is a fixed-capacity byte storage, allocated once and reused among requests. Hosts
// non-interrelated byte sequences (segments) in a single place and never grows: every write
// that doesn't fit is reported to the caller instead of reallocating the memory.
type Buffer struct {
	memory []byte
	begin  int
}

func New(capacity int) *Buffer {
	return &Buffer{
		memory: make([]byte, 0, capacity),
	}
}

// Append writes data, checking whether the new amount of elements (bytes) doesn't exceed the
// capacity, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(b.memory)+len(elements) > cap(b.memory) {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// AppendTrunc writes as many elements as fit and tells whether the rest was cut off.
func (b *Buffer) AppendTrunc(elements []byte) (truncated bool) {
	if free := cap(b.memory) - len(b.memory); len(elements) > free {
		elements, truncated = elements[:free], true
	}

	b.memory = append(b.memory, elements...)
	return truncated
}

// Finish completes current segment, returning its value.
func (b *Buffer) Finish() []byte {
	segment := b.memory[b.begin:len(b.memory):len(b.memory)]
	b.begin = len(b.memory)

	return segment
}

// Free returns how many bytes can still be written.
func (b *Buffer) Free() int {
	return cap(b.memory) - len(b.memory)
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.begin = 0
	b.memory = b.memory[:0]
}
