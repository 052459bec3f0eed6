// Package config loads runtime configuration for the blog client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults). The default API base
//     url can be replaced at link time.
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: a .env file in the working directory is loaded first,
//     then BLOGSAPP_API_URL, BLOGSAPP_STORE_PATH and BLOGSAPP_LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base url (e.g. http://localhost:5000)
//	-s string   local session store file
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "store_path": "blogsapp.db",
//	  "log_level": "info"
//	}
package config
