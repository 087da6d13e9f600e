package cache

// collection is an ordered, identity-keyed record set. Records are stored by
// value; callers always receive copies, never aliases into the collection.
type collection[T any] struct {
	id      func(T) string
	records []T
}

func (c *collection[T]) replaceAll(records []T) {
	c.records = make([]T, len(records))
	copy(c.records, records)
}

func (c *collection[T]) insert(record T) {
	c.records = append(c.records, record)
}

func (c *collection[T]) update(id string, patch func(*T)) bool {
	for i := range c.records {
		if c.id(c.records[i]) == id {
			patch(&c.records[i])
			return true
		}
	}
	return false
}

func (c *collection[T]) remove(id string) bool {
	for i := range c.records {
		if c.id(c.records[i]) == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}
	return false
}

func (c *collection[T]) get(id string) (T, bool) {
	for i := range c.records {
		if c.id(c.records[i]) == id {
			return c.records[i], true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

func (c *collection[T]) index() map[string]T {
	out := make(map[string]T, len(c.records))
	for _, r := range c.records {
		out[c.id(r)] = r
	}
	return out
}
