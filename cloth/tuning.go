package cloth

const (
	Rows             = 15
	Cols             = 15
	RestDistance     = 30.0
	Gravity          = 9.8
	TimeStep         = 0.1
	ClickTolerance   = 5.0
	RelaxationPasses = 5 // fixed per frame, not a convergence loop
	ViewWidth        = 1080.0
	ViewHeight       = 640.0
)
