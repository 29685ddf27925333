package geom

import (
	"errors"
	"fmt"
)

// ErrNoTangent is returned when a tangent construction is requested
// from a point that lies inside or on the circle.
var ErrNoTangent = textErr("no tangent line from a point inside or on the circle")

const packageName = "geom: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}
