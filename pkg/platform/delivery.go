// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

const (
	// DeliveryImmediate means the channel is a named pipe. The host reads
	// each write as soon as it arrives, possibly while the userscript is
	// still running.
	DeliveryImmediate Delivery = "immediate"
	// DeliveryOnExit means the channel is a regular file. The host reads its
	// contents only after the userscript process has exited.
	DeliveryOnExit Delivery = "on-exit"
)

// Delivery describes when commands written to the host's channel take effect.
// It is an external contract of the host; nothing in this module can wait
// for or force delivery.
type Delivery string

// String returns the delivery name.
func (d Delivery) String() string { return string(d) }

// Describe returns a one-line human-readable explanation of the delivery mode.
func (d Delivery) Describe() string {
	switch d {
	case DeliveryImmediate:
		return "named pipe: commands run as soon as the host reads them"
	case DeliveryOnExit:
		return "regular file: commands run after the userscript exits"
	default:
		return "unknown delivery mode"
	}
}

// CurrentDelivery returns the delivery mode for the running operating system.
func CurrentDelivery() Delivery {
	return DeliveryFor(runtime.GOOS)
}

// DeliveryFor returns the delivery mode for the given GOOS value.
// Windows has no named pipes on the filesystem, so the host falls back to a
// temporary file there. Every other platform gets a real FIFO.
func DeliveryFor(goos string) Delivery {
	if goos == Windows {
		return DeliveryOnExit
	}
	return DeliveryImmediate
}
