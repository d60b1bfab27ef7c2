package commands

import (
	"appcenter-go/internal/cmd/base"
	SharedModels "appcenter-go/internal/shared"
	"context"
)

type ArticlesCommand struct {
	*base.Command

	flagPage     int
	flagPageSize int
	flagTag      string
	flagKeyword  string
}

func (c *ArticlesCommand) Synopsis() string {
	return "List articles, or show one by ID"
}

func (c *ArticlesCommand) Help() string {
	return `Usage: appcenter articles [options] [article-id]` + c.Flags().Help()
}

func (c *ArticlesCommand) Flags() *base.FlagSet {
	f := c.NewFlags("articles")
	f.IntVar(&c.flagPage, "page", 0, "Page number, starting at 1")
	f.IntVar(&c.flagPageSize, "page-size", 0, "Items per page")
	f.StringVar(&c.flagTag, "tag", "", "Filter by tag ID")
	f.StringVar(&c.flagKeyword, "keyword", "", "Filter by title")
	return f
}

func (c *ArticlesCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, func(ctx context.Context, s *base.Session) (any, error) {
		if f.NArg() > 0 {
			res, err := s.Client.GetArticle(ctx, f.Arg(0))
			if err != nil {
				return nil, err
			}
			return res.Message.Data, nil
		}

		res, err := s.Client.ListArticles(ctx, SharedModels.ArticleQuery{
			Page:     c.flagPage,
			PageSize: c.flagPageSize,
			Tag:      c.flagTag,
			Keyword:  c.flagKeyword,
		})
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}

type TagsCommand struct {
	*base.Command
}

func (c *TagsCommand) Synopsis() string {
	return "List article tags"
}

func (c *TagsCommand) Help() string {
	return `Usage: appcenter tags` + c.Flags().Help()
}

func (c *TagsCommand) Flags() *base.FlagSet {
	return c.NewFlags("tags")
}

func (c *TagsCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, func(ctx context.Context, s *base.Session) (any, error) {
		res, err := s.Client.ListTags(ctx)
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}
