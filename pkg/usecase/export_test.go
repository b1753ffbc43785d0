package usecase

// Export unexported functions for testing
var RateLimitWaitForTest = rateLimitWait
