package handlers

import (
	"strconv"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Data:       data,
		Message:    Err.ErrMsg,
		Success:    Err.ErrCode == errno.SuccessCode,
	})
}

func pathId(c *app.RequestContext, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessage("invalid " + name)
	}
	return id, nil
}

type CommentContentParam struct {
	Content string `form:"content" json:"content"`
}

type ListCommentParam struct {
	PageNum  int64 `query:"page"`
	PageSize int64 `query:"limit"`
}
