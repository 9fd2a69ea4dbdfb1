package common

// DefaultKeyPrefix namespaces every key the client writes to the local store.
const DefaultKeyPrefix = "@InvestApp:"

// SharedSeedPassword is the password of every built-in (seed) account.
const SharedSeedPassword = "123456"
