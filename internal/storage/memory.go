package storage

// MemoryBackend keeps the encoded blob in process memory. It exists for
// tests: it exercises the same encode/decode path as the SQLite backend and
// lets tests count saves or inject failures.
type MemoryBackend struct {
	data   []byte
	exists bool

	// Saves counts successful Save calls.
	Saves int

	// LoadErr and SaveErr, when set, are returned by Load and Save.
	LoadErr error
	SaveErr error
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load() (State, error) {
	if b.LoadErr != nil {
		return DefaultState(), b.LoadErr
	}
	if !b.exists {
		return DefaultState(), nil
	}
	return Decode(b.data)
}

func (b *MemoryBackend) Save(s State) error {
	if b.SaveErr != nil {
		return b.SaveErr
	}
	data, err := Encode(s)
	if err != nil {
		return err
	}
	b.data = data
	b.exists = true
	b.Saves++
	return nil
}

func (b *MemoryBackend) Clear() error {
	b.data = nil
	b.exists = false
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}

// SetRaw seeds the backend with an arbitrary blob, bypassing the codec.
// Tests use it to simulate a malformed stored payload.
func (b *MemoryBackend) SetRaw(data []byte) {
	b.data = data
	b.exists = true
}

var _ Backend = (*MemoryBackend)(nil)
