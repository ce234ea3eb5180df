package queue

// MaxCapacity is the largest capacity New accepts.
const MaxCapacity = 1 << 30
