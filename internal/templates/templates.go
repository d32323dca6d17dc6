// Package templates holds the static files written into a freshly generated
// project and the writer that puts them on disk.
package templates

import (
	"path"

	"github.com/conneroisu/vitewind/internal/config"
)

// File is one template target, relative to the project directory. When
// Remove is set the target is deleted instead of written.
type File struct {
	Path    string
	Content string
	Remove  bool
}

const tailwindConfig = `/** @type {import('tailwindcss').Config} */
export default {
  content: [
    "./index.html",
    "./src/**/*.{js,ts,jsx,tsx}",
  ],
  theme: {
    extend: {},
  },
  plugins: [],
}
`

const indexCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;
`

const appComponent = `export default function App() {
  return (
    <>
      <div className="bg-gray-200 p-8">
      <h1 className="text-3xl font-bold mb-4 text-center">Tailwind CSS Sample Page</h1>

      <div className="flex justify-between items-center bg-white p-4 rounded-md shadow-md mb-6">
        <p className="text-gray-700">Responsive Text:</p>
        <p className="text-lg sm:text-xl md:text-2xl lg:text-3xl xl:text-4xl">This text adjusts based on screen size.</p>
      </div>

      <div className="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-4 mb-6">
        <div className="bg-blue-500 text-white p-4 rounded-md shadow-md">
          Card 1
        </div>
        <div className="bg-green-500 text-white p-4 rounded-md shadow-md">
          Card 2
        </div>
        <div className="bg-yellow-500 text-white p-4 rounded-md shadow-md">
          Card 3
        </div>
      </div>

      <button className="bg-purple-500 text-white py-2 px-4 rounded-md hover:bg-purple-700 focus:outline-none">
        Click Me
      </button>
    </div>
    </>
  )
}
`

const tsConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "useDefineForClassFields": true,
    "lib": ["ES2020", "DOM", "DOM.Iterable"],
    "module": "ESNext",
    "skipLibCheck": true,

    /* Bundler mode */
    "moduleResolution": "node",
    "forceConsistentCasingInFileNames": true,
    "allowImportingTsExtensions": true,
    "resolveJsonModule": true,
    "isolatedModules": true,
    "noEmit": true,
    "jsx": "react-jsx",

    /* Linting */
    "strict": true,
    "noUnusedLocals": true,
    "noUnusedParameters": true,
    "noFallthroughCasesInSwitch": true
  },
  "include": ["src"],
  "references": [{ "path": "./tsconfig.node.json" }]
}
`

const tsConfigNode = `{
  "compilerOptions": {
    "composite": true,
    "skipLibCheck": true,
    "module": "ESNext",
    "moduleResolution": "node",
    "strict": true,
    "forceConsistentCasingInFileNames": true,
    "allowSyntheticDefaultImports": true,
    "rootDir": "./"
  },
  "include": ["vite.config.ts"]
}
`

const gitignoreHead = `# Node.js
node_modules/

# Output
build/
dist/
out/

# IDE
.vscode/
.idea/

# Dependency directories
typings/
`

// Only the typed variant compiles to .js, so only it ignores .js output.
const gitignoreTypeScript = `
# Compiled TypeScript
*.js
*.js.map

# TypeScript cache
*.tsbuildinfo
`

const gitignoreTail = `
# Tailwind CSS
tailwind.config.js
postcss.config.js

# Shadow DOM (if using a specific library)
shadow-clones/

# Editor files
*.swp
*.swo
*.swn
`

// AppComponentPath returns the root component path for the session's
// language: src/App.tsx or src/App.jsx.
func AppComponentPath(s config.Session) string {
	if s.TypeScript() {
		return path.Join("src", "App.tsx")
	}
	return path.Join("src", "App.jsx")
}

// Gitignore returns the ignore rules for the session's language.
func Gitignore(s config.Session) string {
	if s.TypeScript() {
		return gitignoreHead + gitignoreTypeScript + gitignoreTail
	}
	return gitignoreHead + gitignoreTail
}

// Files returns the template targets for a session in the order they are
// applied. The result depends only on the language and RichTemplates.
// tsconfig.json and tsconfig.node.json are only written for TypeScript.
func Files(s config.Session) []File {
	files := []File{
		{Path: "tailwind.config.js", Content: tailwindConfig},
		{Path: path.Join("src", "index.css"), Content: indexCSS},
		{Path: AppComponentPath(s), Content: appComponent},
	}

	if !s.RichTemplates {
		return files
	}

	if s.TypeScript() {
		files = append(files,
			File{Path: "tsconfig.json", Content: tsConfig},
			File{Path: "tsconfig.node.json", Content: tsConfigNode},
		)
	}

	files = append(files,
		File{Path: ".gitignore", Content: Gitignore(s)},
		File{Path: path.Join("src", "App.css"), Remove: true},
	)

	return files
}
