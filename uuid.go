package guid

import "github.com/google/uuid"

// FromUUID converts an RFC 4122 UUID, which is stored big-endian, to a Guid.
func FromUUID(u uuid.UUID) Guid {
	b := [Size]byte(u)
	return fromBigEndian(&b)
}

// UUID returns g as an RFC 4122 UUID. Its String matches g.String.
func (g Guid) UUID() uuid.UUID {
	return uuid.UUID(g.bigEndian())
}
