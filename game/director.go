package game

type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*MineField)

	/**
	 * Perform a single step of actions, returning whether the field changed
	 */
	Act() bool
}
