package logging

import "github.com/bnema/matchy/internal/ports"

// Nop discards everything.
type Nop struct{}

var _ ports.Logger = Nop{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
