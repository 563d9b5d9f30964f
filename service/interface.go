package service

// Service defines the lifecycle interface for long-lived subsystems
// Services own process resources: the audio device, the playback bot
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(args...) - configuration from the loaded config
//  3. Start() - acquire devices, start loops
//  4. [runtime operation]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service from optional args
	// Services pick the arg types they understand and ignore the rest
	Init(args ...any) error

	// Start begins service operation
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
