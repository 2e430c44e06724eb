// export_test.go exports private functions for white-box testing.
package issuestore

// BucketPath exports bucketPath for testing.
var BucketPath = bucketPath

// NewFactoryWithThreshold creates a factory flushing after threshold buffered bytes.
func NewFactoryWithThreshold(threshold int) *Factory {
	return &Factory{flushThreshold: threshold}
}
