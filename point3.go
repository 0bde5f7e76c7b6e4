package dihedral

// NewPoint3D returns the point (x, y, z).
func NewPoint3D(x, y, z Float) Point3D {
	return Point3D{x, y, z}
}
