package hyp

import "errors"

// Contract violations reported by the builders and by Document.Validate
var (
	ErrDuplicatePadstack = errors.New("duplicate padstack name")
	ErrUnknownPadstack   = errors.New("unknown padstack")
	ErrDuplicateNet      = errors.New("duplicate net name")
	ErrNoOpenNet         = errors.New("no net is open")
	ErrNetOpen           = errors.New("a net is still open")
	ErrDiscontinuous     = errors.New("edge does not start where the previous edge ends")
	ErrOpenContour       = errors.New("contour is not closed")
	ErrEmptyContour      = errors.New("contour has no edges")
	ErrNotOnCircle       = errors.New("arc endpoint is not on its circle")
	ErrNotPositive       = errors.New("value must be positive")
	ErrUnknownPolygon    = errors.New("void references an unknown polygon")
	ErrDuplicatePolygon  = errors.New("duplicate polygon id")
	ErrNoOpenPolygon     = errors.New("no polygon is open")
	ErrUnknownDevice     = errors.New("unknown device reference")
	ErrImpedanceSpec     = errors.New("impedance segment needs exactly one of geometry or target")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrNotFinite         = errors.New("value is NaN or infinite")
	ErrPolygonOpen       = errors.New("a polygon is still open")
	ErrShapeCount        = errors.New("wrong number of pad shapes")
	ErrPinRef            = errors.New("pin reference is not DEVICE.PIN")
	ErrNoDocument        = errors.New("no document")
)
