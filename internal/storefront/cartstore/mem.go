package cartstore

import "context"

// MemKV is an in-memory KV, used in tests.
type MemKV struct {
	data map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemKV) Set(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// Snapshot returns a copy of the stored state, for byte-level assertions.
func (m *MemKV) Snapshot() map[string][]byte {
	out := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		c := make([]byte, len(v))
		copy(c, v)
		out[k] = c
	}
	return out
}
