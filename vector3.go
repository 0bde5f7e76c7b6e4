package dihedral

// Subtract returns the vector from p to q, that is q - p.
func Subtract(p, q Point3D) Vector3D {
	return q.Sub(p)
}

// Dot returns the scalar product a·b.
func Dot(a, b Vector3D) Float {
	return a.Dot(b)
}

// Cross returns the right-handed vector product a×b.
func Cross(a, b Vector3D) Vector3D {
	return a.Cross(b)
}

// Norm returns the Euclidean length of v. The components are scaled by the
// largest of them first, so the sum of squares neither overflows nor
// underflows.
func Norm(v Vector3D) Float {
	m := max(abs(v[0]), abs(v[1]), abs(v[2]))
	if m == 0 || isInf(m) {
		return m
	}
	u := Vector3D{v[0] / m, v[1] / m, v[2] / m}
	return m * sqrt(Dot(u, u))
}

// Normalize returns the unit vector along v. The zero vector has no
// direction; every component of the result is then NaN.
func Normalize(v Vector3D) Vector3D {
	n := Norm(v)
	return Vector3D{v[0] / n, v[1] / n, v[2] / n}
}

func abs(x Float) Float {
	if x < 0 {
		return -x
	}
	return x
}
