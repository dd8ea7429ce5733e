package cryptoasset

// IsSuccess reports whether the envelope status counts as success.
// Partial success does.
func (r Response) IsSuccess() bool {
	return r.Status == StatusSuccess || r.Status == StatusPartialSuccess
}

// HasNextPage reports whether another page follows.
func (p Pagination) HasNextPage() bool {
	return p.HasNext
}

// HasPreviousPage reports whether a page precedes this one.
func (p Pagination) HasPreviousPage() bool {
	return p.HasPrevious
}

// NextPage returns the following page number, if any.
func (p Pagination) NextPage() (int, bool) {
	if !p.HasNext {
		return 0, false
	}
	return p.Page + 1, true
}

// PreviousPage returns the preceding page number, if any.
func (p Pagination) PreviousPage() (int, bool) {
	if !p.HasPrevious {
		return 0, false
	}
	return p.Page - 1, true
}
