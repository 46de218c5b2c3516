package drives

import (
	"fmt"
	"strings"
)

// Resolve derives the most reliable stable identity available from a device
// reference, trying signals in reliability order: hardware serial number
// (HIGH), filesystem UUID (MEDIUM, changes when the volume is reformatted),
// then a label+size composite (LOW, breaks if the user relabels the volume).
// The composite requires both a label and a positive reported size. Returns
// nil when none of the signals is present; that is an answer, not an error.
func Resolve(ref DeviceRef) *Identity {
	if serial := strings.TrimSpace(ref.Serial); serial != "" {
		return &Identity{
			Value:      serial,
			Method:     MethodSerial,
			Confidence: ConfidenceHigh,
		}
	}

	if fsUUID := strings.TrimSpace(ref.FsUUID); fsUUID != "" {
		return &Identity{
			Value:      fsUUID,
			Method:     MethodFsUUID,
			Confidence: ConfidenceMedium,
		}
	}

	if label := strings.TrimSpace(ref.Label); label != "" && ref.SizeBytes > 0 {
		return &Identity{
			Value:      fmt.Sprintf("%s-%d", label, ref.SizeBytes),
			Method:     MethodLabelSize,
			Confidence: ConfidenceLow,
		}
	}

	return nil
}
