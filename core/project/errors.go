package project

import "errors"

var (
	ErrInvalidProjectName = errors.New("project: invalid project name")
	ErrInvalidDataURL     = errors.New("project: file does not contain a text/html data URL")
	ErrEmptyURL           = errors.New("project: URL file is empty")
	ErrNoProjects         = errors.New("project: no projects given")
)
