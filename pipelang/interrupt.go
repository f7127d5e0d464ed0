package pipelang

// Interrupt is yielded by Run before each instruction is dispatched.
type Interrupt struct {
	IP    int
	Token Token
}
