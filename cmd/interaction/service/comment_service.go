package service

import (
	"context"
	"time"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CommentView 评论列表条目：内容 + 作者公开信息
type CommentView struct {
	CommentId int64       `json:"comment_id"`
	Content   string      `json:"content"`
	CreatedAt string      `json:"created_at"`
	Owner     *model.User `json:"owner"`
}

func (s *CommentService) AddComment(userId, videoId int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("comment content is required")
	}
	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	now := time.Now().Format(constants.TimeFormat)
	comment := &model.Comment{
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	return comment, nil
}

// UpdateComment rewrites the content after the ownership gate.
func (s *CommentService) UpdateComment(userId, commentId int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("comment content is required")
	}
	comment, err := db.GetCommentInfo(s.ctx, commentId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetCommentInfo failed")
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}
	if comment.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("only the comment owner can edit it")
	}

	if err := db.UpdateCommentContent(s.ctx, commentId, content, time.Now().Format(constants.TimeFormat)); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateCommentContent failed")
	}
	comment.Content = content
	return comment, nil
}

// DeleteComment removes the comment and its likes after the ownership gate.
func (s *CommentService) DeleteComment(userId, commentId int64) error {
	comment, err := db.GetCommentInfo(s.ctx, commentId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetCommentInfo failed")
	}
	if comment == nil {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	if comment.UserId != userId {
		return errno.PermissionErr.WithMessage("only the comment owner can delete it")
	}

	if err := db.DeleteLikesByTarget(s.ctx, model.LikeTarget{Type: constants.LikeTargetComment, Id: commentId}); err != nil {
		return errors.WithMessage(err, "dao.DeleteLikesByTarget failed")
	}
	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		return errors.WithMessage(err, "dao.DeleteComment failed")
	}
	return nil
}

// ListComments pages the video's comments with each author resolved.
func (s *CommentService) ListComments(videoId, pageNum, pageSize int64) ([]*CommentView, int64, error) {
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	comments, count, err := db.ListCommentsByVideo(s.ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.ListCommentsByVideo failed")
	}
	if len(comments) == 0 {
		return []*CommentView{}, count, nil
	}

	ownerIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		ownerIds = append(ownerIds, c.UserId)
	}
	owners, err := userdb.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}

	views := make([]*CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, &CommentView{
			CommentId: c.CommentId,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Owner:     owners[c.UserId],
		})
	}
	return views, count, nil
}
