package domain

const (
	// StackResourceType is the type tag CloudFormation reports for the stack itself.
	StackResourceType = "AWS::CloudFormation::Stack"

	CompleteSuffix = "_COMPLETE"
	FailedSuffix   = "_FAILED"
	DeletePrefix   = "DELETE"
)
