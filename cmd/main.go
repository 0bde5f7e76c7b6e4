package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/dihedral"
)

var (
	inDegrees = flag.Bool("degrees", false, "Print angles in degrees instead of radians")
	unsigned  = flag.Bool("unsigned", false, "Ignore the direction of rotation")
	checked   = flag.Bool("checked", false, "Report degenerate frames instead of printing NaN silently")
)

// A leucine residue: N, CA, C, O, CB, CG, CD1, CD2.
var residue = []dihedral.Point3D{
	dihedral.NewPoint3D(24.969, 13.428, 30.692),
	dihedral.NewPoint3D(24.044, 12.661, 29.808),
	dihedral.NewPoint3D(22.785, 13.482, 29.543),
	dihedral.NewPoint3D(21.951, 13.670, 30.431),
	dihedral.NewPoint3D(23.672, 11.328, 30.466),
	dihedral.NewPoint3D(22.881, 10.326, 29.620),
	dihedral.NewPoint3D(23.691, 9.935, 28.389),
	dihedral.NewPoint3D(22.557, 9.096, 30.459),
}

type options struct {
	degrees  bool
	unsigned bool
	checked  bool
}

func main() {
	flag.Parse()

	opts := options{
		degrees:  *inDegrees,
		unsigned: *unsigned,
		checked:  *checked,
	}

	if err := run(os.Stdout, log.Default(), residue, opts); err != nil {
		log.Fatal(err)
	}
}

// run prints the angle of the first four points, then the angle of every
// overlapping window of four consecutive points.
func run(w io.Writer, logger *log.Logger, points []dihedral.Point3D, opts options) error {
	if len(points) < 4 {
		return fmt.Errorf("need at least 4 points, got %d", len(points))
	}

	if _, err := fmt.Fprintln(w, angle(logger, frame(points, 0), 0, opts)); err != nil {
		return err
	}

	for i := 0; i+4 <= len(points); i++ {
		if _, err := fmt.Fprintln(w, angle(logger, frame(points, i), i, opts)); err != nil {
			return err
		}
	}
	return nil
}

func frame(points []dihedral.Point3D, start int) [4]dihedral.Point3D {
	return [4]dihedral.Point3D{points[start], points[start+1], points[start+2], points[start+3]}
}

func angle(logger *log.Logger, q [4]dihedral.Point3D, index int, opts options) float64 {
	var a dihedral.Float
	switch {
	case opts.checked:
		var err error
		if opts.unsigned {
			a, err = dihedral.CheckedDihedralUnsigned(q)
		} else {
			a, err = dihedral.CheckedDihedral(q)
		}
		if err != nil {
			logger.Printf("frame %d: %v", index, err)
		}
	case opts.unsigned:
		a = dihedral.DihedralUnsigned(q)
	default:
		a = dihedral.Dihedral(q)
	}

	if opts.degrees {
		return mgl64.RadToDeg(float64(a))
	}
	return float64(a)
}
