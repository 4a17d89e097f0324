package tween

import "errors"

var (
	// ErrMissingCapability is returned when a target lacks the component a
	// tween writes to (color on a container, text counter on a sprite, ...).
	ErrMissingCapability = errors.New("tween: target lacks required capability")

	// ErrZeroDistance is returned by speed-based constructors whose from and
	// to values coincide; the progress rate would be infinite.
	ErrZeroDistance = errors.New("tween: zero distance for speed-based tween")

	// ErrInvalidParams is returned when Params fail validation.
	ErrInvalidParams = errors.New("tween: invalid parameters")

	// ErrNotReversible is returned when ping-pong is requested for a one-shot
	// kind (shake, clip playback, timer).
	ErrNotReversible = errors.New("tween: kind cannot play in reverse")

	// ErrClosed is returned when registering with a closed Scheduler.
	ErrClosed = errors.New("tween: scheduler closed")

	// ErrNilTarget is returned when a constructor receives no target.
	ErrNilTarget = errors.New("tween: nil target")

	// ErrUnknownEase is returned when an easing name cannot be resolved.
	ErrUnknownEase = errors.New("tween: unknown ease type")

	// ErrNodeNotFound is returned when an effect names a node that is not
	// in the tree it is bound to.
	ErrNodeNotFound = errors.New("tween: node not found")

	// ErrUnbound is returned by Effect.Show before Bind succeeded.
	ErrUnbound = errors.New("tween: effect not bound")
)
