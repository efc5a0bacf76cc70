// Package builder turns a terse project description into a fully populated
// webpack configuration for a browser ([ClientConfig]) or node
// ([ServerConfig]) build.
//
// A builder is created once per build, tuned with its fluent setters and
// asked for the result with ToConfig:
//
//	client, err := builder.NewClient("/srv/app", builder.Path("src/index.tsx"))
//	if err != nil {
//		return err
//	}
//	cfg, err := client.SetAlias("@", "src").ToConfig()
//
// The build flavor comes from NODE_ENV, which must be set: "production"
// selects a production build, anything else a development build. The project
// file (app.config.*) and the layered .env files of the root are read once,
// during construction. ToConfig is pure and may be called repeatedly.
//
// The resulting configuration is the merge of three fragments: the common
// fragment, the mode overlay (development or production) and the role
// additions of the client or server builder. Later fragments override scalar
// keys, maps are merged and lists are concatenated.
package builder
