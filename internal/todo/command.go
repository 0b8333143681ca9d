package todo

import "fmt"

// Command is a single user action against a Store. Front ends build
// commands from input events and hand them to Store.Dispatch.
type Command interface {
	Apply(s *Store) error
	String() string
}

// Dispatch applies cmd to the store.
func (s *Store) Dispatch(cmd Command) error {
	err := cmd.Apply(s)
	if err != nil {
		s.logger.Debug("command rejected", "command", cmd.String(), "err", err)
		return err
	}
	s.logger.Debug("command applied", "command", cmd.String(), "tasks", len(s.tasks))
	return nil
}

// AddCommand appends a task.
type AddCommand struct {
	Description string
	DueDate     string

	// Added is set to the stored task after a successful Apply.
	Added Task
}

func (c *AddCommand) Apply(s *Store) error {
	t, err := s.Add(c.Description, c.DueDate)
	if err != nil {
		return err
	}
	c.Added = t
	return nil
}

func (c *AddCommand) String() string {
	return fmt.Sprintf("add %q", c.Description)
}

// CompleteCommand marks task Number as completed.
type CompleteCommand struct {
	Number int
}

func (c CompleteCommand) Apply(s *Store) error {
	return s.MarkCompleted(c.Number)
}

func (c CompleteCommand) String() string {
	return fmt.Sprintf("complete %d", c.Number)
}

// RemoveCommand deletes task Number.
type RemoveCommand struct {
	Number int

	// Removed is set to the deleted task after a successful Apply.
	Removed Task
}

func (c *RemoveCommand) Apply(s *Store) error {
	t, err := s.Remove(c.Number)
	if err != nil {
		return err
	}
	c.Removed = t
	return nil
}

func (c *RemoveCommand) String() string {
	return fmt.Sprintf("remove %d", c.Number)
}

// ClearCompletedCommand drops every completed task.
type ClearCompletedCommand struct {
	// Cleared is the number of tasks removed by Apply.
	Cleared int
}

func (c *ClearCompletedCommand) Apply(s *Store) error {
	c.Cleared = s.ClearCompleted()
	return nil
}

func (c *ClearCompletedCommand) String() string {
	return "clear-completed"
}

// MoveCommand relocates the task at position From to position To (0-based).
type MoveCommand struct {
	From, To int
}

func (c MoveCommand) Apply(s *Store) error {
	return s.Move(c.From, c.To)
}

func (c MoveCommand) String() string {
	return fmt.Sprintf("move %d->%d", c.From, c.To)
}

// EditCommand rewrites task Number.
type EditCommand struct {
	Number      int
	Description string
	DueDate     string
}

func (c EditCommand) Apply(s *Store) error {
	return s.Edit(c.Number, c.Description, c.DueDate)
}

func (c EditCommand) String() string {
	return fmt.Sprintf("edit %d", c.Number)
}
