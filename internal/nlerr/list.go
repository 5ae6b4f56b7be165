package nlerr

import (
	"fmt"
	"strings"
)

// List is a set of errors that reported together, like all problems in the command line arguments.
type List struct {
	// What describes what kind of errors is this.
	What error

	Children []error
}

// Error implements error interface.
// Each child is indented under What.
func (l List) Error() string {
	var sb strings.Builder
	sb.WriteString(l.What.Error())
	sb.WriteString(":")

	for _, e := range l.Children {
		for _, s := range strings.Split(e.Error(), "\n") {
			sb.WriteString("\n  ")
			sb.WriteString(s)
		}
	}

	return sb.String()
}

// Unwrap returns What and all children.
func (l List) Unwrap() []error {
	return append([]error{l.What}, l.Children...)
}

// Collector collects errors and makes a List.
type Collector struct {
	What     error
	children []error
}

// Add adds errors. nil is ignored.
func (c *Collector) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			c.children = append(c.children, err)
		}
	}
}

// Addf adds a error made by fmt.Errorf.
func (c *Collector) Addf(format string, args ...interface{}) {
	c.Add(fmt.Errorf(format, args...))
}

// Len returns number of collected errors.
func (c *Collector) Len() int {
	return len(c.children)
}

// Err returns a List of collected errors, or nil if nothing collected.
func (c *Collector) Err() error {
	if len(c.children) == 0 {
		return nil
	}
	return List{What: c.What, Children: c.children}
}
