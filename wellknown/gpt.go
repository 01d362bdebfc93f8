package wellknown

import "github.com/Lzww0608/guid"

// GPT partition types.
//
//guid:var EFISystemPartition c12a7328-f81f-11d2-ba4b-00a0c93ec93b
//guid:var BasicDataPartition ebd0a0a2-b9e5-4433-87c0-68b6b72699c7
//guid:var LinuxFilesystemPartition 0fc63daf-8483-4772-8e79-3d69d8477de4
//guid:var LinuxSwapPartition 0657fd6d-a4ab-43c4-84e5-0933c84b4f4f

// PartitionTypes maps the GPT partition types above to their names.
var PartitionTypes = map[guid.Guid]string{
	EFISystemPartition:       "EFI System",
	BasicDataPartition:       "Microsoft basic data",
	LinuxFilesystemPartition: "Linux filesystem",
	LinuxSwapPartition:       "Linux swap",
}

// PartitionName returns the name of a known partition type, or "" if g is not
// one of them.
func PartitionName(g guid.Guid) string {
	return PartitionTypes[g]
}
