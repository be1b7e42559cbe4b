package consts

const (
	TokenRevokedKey = "forum:token:revoked:"
	AdminStatsKey   = "forum:admin:stats"
)
