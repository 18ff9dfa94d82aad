package eval

// OpFunc is the body of an instruction. param is the value bound at
// compile time.
type OpFunc func(state *State, param any)

// Instruction is one step of a compiled program.
type Instruction struct {
	Op    OpFunc
	Param any
}

// Perform runs the instruction against state.
func (i Instruction) Perform(state *State) {
	i.Op(state, i.Param)
}
