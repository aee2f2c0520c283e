package game

// ResolveRoles infers the symbols of the side about to move (the computer) and its
// opponent from the number of pieces each side has on the board. X moves first, so X is
// to move whenever both sides have placed the same number of pieces.
func ResolveRoles(b *Board) (computer, human Cell) {
	if b.Count(X) == b.Count(O) {
		return X, O
	}
	return O, X
}
