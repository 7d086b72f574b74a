package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/safe-waters/docker-scaffold/internal/testutils"
	"github.com/safe-waters/docker-scaffold/pkg/config"
	"github.com/safe-waters/docker-scaffold/pkg/document"
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
)

func TestRenderAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name        string
		Instruction render.Instruction
		Params      string
		Expected    string
		ShouldFail  bool
	}{
		{
			Name:        "FROM",
			Instruction: render.From,
			Params:      "python:3.12 AS {service_name}",
			Expected:    "FROM python:3.12 AS {service_name}",
		},
		{
			Name:        "WORKDIR Keeps Placeholder",
			Instruction: render.Workdir,
			Params:      "/app/{service_name}",
			Expected:    "WORKDIR /app/{service_name}",
		},
		{
			Name:        "COPY",
			Instruction: render.Copy,
			Params:      "requirements.txt ./",
			Expected:    "COPY requirements.txt ./",
		},
		{
			Name:        "RUN Substitutes Placeholder",
			Instruction: render.Run,
			Params:      "echo {service_name} && ls /{service_name}",
			Expected:    "RUN echo api && ls /api",
		},
		{
			Name:        "RUN Leaves Other Braces",
			Instruction: render.Run,
			Params:      "echo ${HOME} {other}",
			Expected:    "RUN echo ${HOME} {other}",
		},
		{
			Name:        "ENTRYPOINT Substitutes Placeholder",
			Instruction: render.Entrypoint,
			Params:      `["./{service_name}"]`,
			Expected:    `ENTRYPOINT ["./api"]`,
		},
		{
			Name:        "Lower Case Instruction",
			Instruction: "run",
			Params:      "true",
			ShouldFail:  true,
		},
		{
			Name:        "Unsupported Instruction",
			Instruction: "CMD",
			Params:      `["sh"]`,
			ShouldFail:  true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			got, err := render.RenderAction(test.Instruction, test.Params, "api")
			if test.ShouldFail {
				if !errors.Is(err, render.ErrUnknownAction) {
					t.Fatalf("expected ErrUnknownAction, got %v", err)
				}

				if !strings.Contains(err.Error(), string(test.Instruction)) {
					t.Fatalf("expected error to name '%s'", test.Instruction)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if got != test.Expected {
				t.Fatalf("expected %q, got %q", test.Expected, got)
			}
		})
	}
}

func TestDockerfileRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name        string
		Service     string
		Definition  string
		Expected    *render.Dockerfile
		ExpectedErr error
	}{
		{
			Name:    "Renders Actions",
			Service: "api",
			Definition: `{
	"build": {"dockerfile": "api/Dockerfile"},
	"dockerfile_actions": [["FROM", "x"], ["RUN", "echo {service_name}"]]
}`,
			Expected: &render.Dockerfile{
				ServiceName: "api",
				Path:        "api/Dockerfile",
				Contents:    "FROM x\nRUN echo api",
			},
		},
		{
			Name:       "No Actions",
			Service:    "worker",
			Definition: `{"build": {"dockerfile": "Dockerfile.worker"}}`,
			Expected: &render.Dockerfile{
				ServiceName: "worker",
				Path:        "Dockerfile.worker",
				Contents:    "",
			},
		},
		{
			Name:    "Unknown Action",
			Service: "api",
			Definition: `{
	"build": {"dockerfile": "Dockerfile"},
	"dockerfile_actions": [["FROM", "x"], ["EXPOSE", "80"]]
}`,
			ExpectedErr: render.ErrUnknownAction,
		},
		{
			Name:    "Action With Three Fields",
			Service: "api",
			Definition: `{
	"build": {"dockerfile": "Dockerfile"},
	"dockerfile_actions": [["FROM", "x", "y"]]
}`,
			ExpectedErr: render.ErrMalformedAction,
		},
		{
			Name:    "Action Params Not A String",
			Service: "api",
			Definition: `{
	"build": {"dockerfile": "Dockerfile"},
	"dockerfile_actions": [["FROM", 1]]
}`,
			ExpectedErr: render.ErrMalformedAction,
		},
		{
			Name:    "Actions Not A List",
			Service: "api",
			Definition: `{
	"build": {"dockerfile": "Dockerfile"},
	"dockerfile_actions": {"FROM": "x"}
}`,
			ExpectedErr: render.ErrMalformedAction,
		},
		{
			Name:        "Missing Build",
			Service:     "web",
			Definition:  `{"image": "nginx"}`,
			ExpectedErr: render.ErrMissingField,
		},
		{
			Name:        "Missing Dockerfile",
			Service:     "web",
			Definition:  `{"build": {"context": "."}}`,
			ExpectedErr: render.ErrMissingField,
		},
		{
			Name:        "Build Not An Object",
			Service:     "web",
			Definition:  `{"build": "."}`,
			ExpectedErr: render.ErrMissingField,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			definition, err := document.Decode(strings.NewReader(test.Definition))
			if err != nil {
				t.Fatal(err)
			}

			got, err := render.NewDockerfileRenderer().RenderDockerfile(
				&config.Service{Name: test.Service, Definition: definition},
			)
			if test.ExpectedErr != nil {
				if !errors.Is(err, test.ExpectedErr) {
					t.Fatalf("expected %v, got %v", test.ExpectedErr, err)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if *got != *test.Expected {
				t.Fatalf(
					"expected %+v, got %+v",
					testutils.JSONPrettyPrint(t, test.Expected),
					testutils.JSONPrettyPrint(t, got),
				)
			}
		})
	}
}

func TestActionErrorCarriesInstruction(t *testing.T) {
	t.Parallel()

	definition, err := document.Decode(strings.NewReader(`{
	"build": {"dockerfile": "Dockerfile"},
	"dockerfile_actions": [["FROM", "x"], ["HEALTHCHECK", "NONE"]]
}`))
	if err != nil {
		t.Fatal(err)
	}

	_, err = render.NewDockerfileRenderer().RenderDockerfile(
		&config.Service{Name: "api", Definition: definition},
	)

	var actionErr *render.ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("expected ActionError, got %v", err)
	}

	if actionErr.Instruction != "HEALTHCHECK" || actionErr.Index != 1 ||
		actionErr.Service != "api" {
		t.Fatalf("unexpected ActionError %+v", actionErr)
	}
}

func TestExampleConfig(t *testing.T) {
	t.Parallel()

	configuration, err := document.Decode(
		strings.NewReader(testutils.ExampleConfig),
	)
	if err != nil {
		t.Fatal(err)
	}

	services, _ := configuration.Get("services")
	definition, _ := services.(document.Mapping).Get("api")

	got, err := render.NewDockerfileRenderer().RenderDockerfile(
		&config.Service{
			Name:       "api",
			Definition: definition.(document.Mapping),
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	if got.Contents != testutils.ExampleAPIDockerfile {
		t.Fatalf(
			"expected %q, got %q", testutils.ExampleAPIDockerfile, got.Contents,
		)
	}
}
