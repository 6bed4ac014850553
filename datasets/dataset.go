// Package datasets implements the keyed dataset trained on by hashtrons,
// plus the synthetic and file datasets used by the trainer.
package datasets

// Dataset maps a row key to its binary label
type Dataset map[uint32]bool

func (d *Dataset) Init() {
	*d = make(map[uint32]bool)
}

// Put stores the label of key. It reports false when the key already holds the other label.
func (d Dataset) Put(key uint32, label bool) bool {
	if old, ok := d[key]; ok && old != label {
		return false
	}
	d[key] = label
	return true
}

type SplittedDataset [2]map[uint32]struct{}

// SplitDataset splits dataset into a true set and a false set
func SplitDataset(d Dataset) (o SplittedDataset) {
	o[0] = make(map[uint32]struct{})
	o[1] = make(map[uint32]struct{})
	for k, v := range d {
		if v {
			o[1][k] = struct{}{}
		} else {
			o[0][k] = struct{}{}
		}
	}
	return
}

// Len reports the number of keys in both sets
func (s SplittedDataset) Len() int {
	return len(s[0]) + len(s[1])
}
