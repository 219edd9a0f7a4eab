package domain

// Short names of the remote services resource variants can bind to.
// Used to key the default-client factory.
const (
	ServiceS3  = "s3"
	ServiceEC2 = "ec2"
	ServiceSTS = "sts"
)
