package hashtron

import "errors"

import "github.com/neurlang/quaternary"

import "github.com/neurlang/multiclass/datasets"
import "github.com/neurlang/multiclass/hash"

// New builds a hashtron from a program and the keyed dataset it was solved for.
// Every key is hashed through the program into its bucket and the bucket
// labels are stored in a quaternary filter. Buckets never reached in training
// answer whatever the filter holds for them.
func New(program [][2]uint32, d datasets.Dataset) (h *Hashtron, err error) {
	for _, cmd := range program {
		if cmd[1] == 0 {
			return nil, errors.New("zero modulo in program (new Hashtron)")
		}
	}
	h = new(Hashtron)
	h.program = program

	var table datasets.Dataset
	table.Init()
	for k, v := range d {
		if !table.Put(h.bucket(k), v) {
			return nil, errors.New("program merges keys of both labels (new Hashtron)")
		}
	}
	h.buckets = len(table)
	h.quaternary = quaternary.Make(map[uint32]bool(table))
	return
}

func (h Hashtron) bucket(command uint32) uint32 {
	for i := 0; i < h.Len(); i++ {
		var s, max = h.Get(i)
		command = hash.Hash(command, s, max)
	}
	return command
}
