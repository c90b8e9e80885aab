package vector

import "sync"

// Locked serializes every access to a single Vector through one mutex.
type Locked struct {
	lock sync.Mutex
	vec  *Vector
}

func NewLocked() *Locked {
	return &Locked{vec: New()}
}

// Wrap takes ownership of vec, it must not be used directly afterwards
func Wrap(vec *Vector) *Locked {
	return &Locked{vec: vec}
}

func (l *Locked) Set(index uint, typeName string, value float64) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.vec.Set(index, typeName, value)
}

func (l *Locked) GetDecimal(index uint) (float64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.vec.GetDecimal(index)
}

func (l *Locked) GetInteger(index uint) (int64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.vec.GetInteger(index)
}

func (l *Locked) GetDouble(index uint) (float64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.vec.GetDouble(index)
}

// Do runs cb with the lock held
func (l *Locked) Do(cb func(vec *Vector) error) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return cb(l.vec)
}
