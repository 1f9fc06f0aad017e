package rpcworker

// ServiceName is the name worker processes register with net/rpc.
const ServiceName = "HaloWorker"

const stepMethod = ServiceName + ".Step"

// StepRequest carries one worker slice, halo rows included, in row-major order.
type StepRequest struct {
	Rule  string
	Rows  int
	Cols  int
	Cells []uint8
}

// StepResponse carries the next generation of the requested slice.
type StepResponse struct {
	Rows  int
	Cols  int
	Cells []uint8
}
