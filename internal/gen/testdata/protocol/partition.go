package protocol

// Partition types of a GUID partition table.
//
//guid:var EFISystemPartition c12a7328-f81f-11d2-ba4b-00a0c93ec93b
//guid:var BasicDataPartition "EBD0A0A2-B9E5-4433-87C0-68B6B72699C7"
