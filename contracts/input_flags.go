package contracts

type InputFlags struct {
	Input       string
	Output      string
	RotatePages string
	Interactive bool
	Verbose     bool
}
