package ferrite

// ClaimScalar removes name from r and projects it onto a [ScalarVar][T],
// checking element type identity, scalar shape (MaxLen == 0), and that the
// declared permissions are a superset of want. Returns [NotFound] or
// [WrongType] on mismatch.
func ClaimScalar[T Numeric](r *Registry, name string, want Perm) (*ScalarVar[T], error) {
	v, err := r.remove(name)
	if err != nil {
		r.recordClaimFailure()
		return nil, err
	}
	if !scalarMatches[T](v.Info(), want) {
		r.recordClaimFailure()
		return nil, &WrongType{Name: name, Info: v.Info()}
	}
	r.recordClaim()
	return &ScalarVar[T]{variable: v}, nil
}

// ClaimArray removes name from r and projects it onto an [ArrayVar][T],
// checking element type identity, array shape (MaxLen > 0), and that the
// declared permissions are a superset of want. Returns [NotFound] or
// [WrongType] on mismatch.
func ClaimArray[T Numeric](r *Registry, name string, want Perm) (*ArrayVar[T], error) {
	v, err := r.remove(name)
	if err != nil {
		r.recordClaimFailure()
		return nil, err
	}
	if !arrayMatches[T](v.Info(), want) {
		r.recordClaimFailure()
		return nil, &WrongType{Name: name, Info: v.Info()}
	}
	r.recordClaim()
	return &ArrayVar[T]{variable: v}, nil
}

// ClaimScalarBySuffix is [ClaimScalar] keyed by PV-name suffix match (see
// [Registry]'s suffix rule) rather than an exact name.
func ClaimScalarBySuffix[T Numeric](r *Registry, suffix string, want Perm) (*ScalarVar[T], error) {
	v, err := r.removeBySuffix(suffix)
	if err != nil {
		r.recordClaimFailure()
		return nil, err
	}
	if !scalarMatches[T](v.Info(), want) {
		r.recordClaimFailure()
		return nil, &WrongType{Name: string(v.Name()), Info: v.Info()}
	}
	r.recordClaim()
	return &ScalarVar[T]{variable: v}, nil
}

// ClaimArrayBySuffix is [ClaimArray] keyed by PV-name suffix match (see
// [Registry]'s suffix rule) rather than an exact name.
func ClaimArrayBySuffix[T Numeric](r *Registry, suffix string, want Perm) (*ArrayVar[T], error) {
	v, err := r.removeBySuffix(suffix)
	if err != nil {
		r.recordClaimFailure()
		return nil, err
	}
	if !arrayMatches[T](v.Info(), want) {
		r.recordClaimFailure()
		return nil, &WrongType{Name: string(v.Name()), Info: v.Info()}
	}
	r.recordClaim()
	return &ArrayVar[T]{variable: v}, nil
}

func scalarMatches[T Numeric](info VarInfo, want Perm) bool {
	return info.Type == elemTypeOf[T]() && !info.IsArray() && info.Perm.Has(want)
}

func arrayMatches[T Numeric](info VarInfo, want Perm) bool {
	return info.Type == elemTypeOf[T]() && info.IsArray() && info.Perm.Has(want)
}
