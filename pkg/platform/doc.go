// Package platform reports the identity of the host the process runs on and
// classifies it with osinfo.
//
// Sources:
//   - HostSource asks gopsutil for the host description and, on macOS, reads
//     the product name from SystemVersion.plist.
//   - RuntimeSource derives a coarse identity from the Go runtime.
//   - StaticSource returns a fixed identity, typically taken from configuration.
//
// Chain tries sources in order and Probe runs them side by side for
// diagnostics. Detector memoizes the classified result:
//
//	det := platform.NewDetector(platform.DefaultSource(), platform.WithTTL(5*time.Minute))
//	current, err := det.Current(ctx)
package platform
