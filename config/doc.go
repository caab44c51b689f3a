// Package config loads gridpath settings.
//
// Sources, lowest precedence first:
//
//   - the embedded default.yaml;
//   - a YAML file (flag --config or GRIDPATH_CONFIG);
//   - environment variables, optionally seeded from a .env file:
//     GRIDPATH_ADDR, GRIDPATH_LOG_LEVEL, GRIDPATH_ALGORITHM, GRIDPATH_DELAY.
//
// The merged result is validated with go-playground/validator struct tags
// plus a bounds check of the endpoints against the grid size. Watch reloads
// a file when it changes on disk.
package config
