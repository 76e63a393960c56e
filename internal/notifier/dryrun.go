package notifier

import "fmt"

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct {
	count int
}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the message that would be posted
func (n *DryRunNotifier) Notify(message string) error {
	n.count++
	fmt.Printf("--- Announcement %d ---\n", n.count)
	fmt.Println(message)
	return nil
}
