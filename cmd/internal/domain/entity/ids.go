package entity

import "strings"

// Literal identifier prefixes. Every string primary key starts with the
// prefix of its entity; the database enforces it with a GLOB check.
const (
	PrefixClient         = "client"
	PrefixExecutor       = "executor"
	PrefixSampleContract = "sample_contract"
	PrefixSampleAttach   = "sample_attach"
	PrefixService        = "service"
	PrefixDeal           = "deal"
	PrefixAttachment     = "attachment"
)

// HasPrefix reports whether id carries prefix and something after it.
func HasPrefix(id, prefix string) bool {
	return len(id) > len(prefix) && strings.HasPrefix(id, prefix)
}
