package api

import (
	"context"
	"net/http"

	"github.com/kidandcat/promanager/internal/models"
)

func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	env, err := c.getJSON(ctx, "/projects")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Project](env)
}

func (c *Client) MyProjects(ctx context.Context) ([]models.Project, error) {
	env, err := c.getJSON(ctx, "/projects/my-projects")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Project](env)
}

func (c *Client) Project(ctx context.Context, id string) (models.Project, error) {
	env, err := c.getJSON(ctx, "/projects/"+escape(id))
	if err != nil {
		return models.Project{}, err
	}
	return decodeData[models.Project](env)
}

func (c *Client) CreateProject(ctx context.Context, in models.ProjectInput, image *models.Upload) (models.Project, error) {
	body, ctype, err := multipartBody(in.Fields(), "image", image)
	if err != nil {
		return models.Project{}, err
	}
	env, err := c.do(ctx, http.MethodPost, "/projects", body, ctype)
	if err != nil {
		return models.Project{}, err
	}
	return decodeData[models.Project](env)
}

func (c *Client) UpdateProject(ctx context.Context, id string, in models.ProjectInput, image *models.Upload) (models.Project, error) {
	body, ctype, err := multipartBody(in.Fields(), "image", image)
	if err != nil {
		return models.Project{}, err
	}
	env, err := c.do(ctx, http.MethodPut, "/projects/"+escape(id), body, ctype)
	if err != nil {
		return models.Project{}, err
	}
	return decodeData[models.Project](env)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/projects/"+escape(id), nil, "")
	return err
}
