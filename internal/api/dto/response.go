package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// InsertResultDTO 新增结果，重复注册时 InsertedID 为 nil
type InsertResultDTO struct {
	InsertedID *string `json:"insertedId"`
}

// UpdateResultDTO 更新结果
type UpdateResultDTO struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResultDTO 删除结果
type DeleteResultDTO struct {
	DeletedCount int64 `json:"deletedCount"`
}

// CountDTO 计数
type CountDTO struct {
	Count int64 `json:"count"`
}
