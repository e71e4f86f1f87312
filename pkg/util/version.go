package util

// Version version of mycnftune
const Version = "1.0.0"
