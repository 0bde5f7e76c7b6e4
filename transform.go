package dihedral

// Translate moves all four points by offset.
func Translate(points [4]Point3D, offset Vector3D) [4]Point3D {
	var moved [4]Point3D
	for i, p := range points {
		moved[i] = p.Add(offset)
	}
	return moved
}

// Rotate turns all four points by angle radians about axis, which passes
// through the origin. The axis does not need to be of unit length, but it
// must not be the zero vector.
func Rotate(points [4]Point3D, angle Float, axis Vector3D) [4]Point3D {
	q := quatRotate(angle, Normalize(axis))

	var turned [4]Point3D
	for i, p := range points {
		turned[i] = q.Rotate(p)
	}
	return turned
}
