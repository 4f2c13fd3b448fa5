package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	cat := LoadCatalog(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if cat == nil {
		t.Fatal("LoadCatalog returned nil")
	}
	if !cat.Empty() {
		t.Errorf("LoadCatalog(missing) = %+v, want empty catalog", cat)
	}
}

func TestLoadCatalog_InvalidDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.yaml", "{unclosed")
	cat := LoadCatalog(path)
	if !cat.Empty() {
		t.Errorf("LoadCatalog(invalid) = %+v, want empty catalog", cat)
	}
}

func TestLoadCatalog_YAML(t *testing.T) {
	src := `
system_config:
  description: Tweaks
  enable_ssh:
    name: Enable SSH
    description: Enable the OpenSSH daemon
    command:
      - "systemctl enable sshd"
      - "systemctl start sshd"
essential_apps:
  name: Essentials
  apps:
    - name: git
      description: Version control
      command: "dnf install -y git"
internet_apps:
  name: Internet
  browsers:
    name: Web Browsers
    apps:
      firefox:
        name: Firefox
        description: Browser
        command: "dnf install -y firefox"
`
	path := writeFile(t, t.TempDir(), "catalog.yaml", src)
	cat := LoadCatalog(path)

	if !slices.Equal(cat.SystemConfig.Options.Keys(), []string{"enable_ssh"}) {
		t.Errorf("system_config options = %v", cat.SystemConfig.Options.Keys())
	}
	opt, _ := cat.SystemConfig.Options.Get("enable_ssh")
	if len(opt.Command) != 2 {
		t.Errorf("enable_ssh commands = %v, want 2 entries", opt.Command)
	}
	if len(cat.EssentialApps.Apps) != 1 || cat.EssentialApps.Apps[0].Name != "git" {
		t.Errorf("essential apps = %+v", cat.EssentialApps.Apps)
	}
	if !slices.Equal(cat.Categories.Keys(), []string{"internet_apps"}) {
		t.Errorf("categories = %v", cat.Categories.Keys())
	}
}

func TestLoadCatalog_JSON(t *testing.T) {
	// JSON distro data is accepted through the same loader.
	src := `{
  "system_config": {
    "description": "Tweaks",
    "set_hostname": {
      "name": "Set Hostname",
      "description": "Set the system hostname",
      "command": "hostnamectl set-hostname"
    },
    "enable_rpmfusion": {
      "name": "Enable RPM Fusion",
      "description": "Enable RPM Fusion repositories",
      "command": ["dnf install -y rpmfusion-free"]
    }
  }
}`
	path := writeFile(t, t.TempDir(), "catalog.json", src)
	cat := LoadCatalog(path)

	// Declared key order survives the JSON decode too.
	want := []string{"set_hostname", "enable_rpmfusion"}
	if !slices.Equal(cat.SystemConfig.Options.Keys(), want) {
		t.Errorf("options = %v, want %v", cat.SystemConfig.Options.Keys(), want)
	}
}

func TestLoadSelection_MissingFile(t *testing.T) {
	sel := LoadSelection(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if sel == nil {
		t.Fatal("LoadSelection returned nil")
	}
	// Maps must be usable without nil checks.
	if sel.SystemConfig == nil || sel.EssentialApps == nil {
		t.Errorf("LoadSelection(missing) left nil maps: %+v", sel)
	}
}

func TestLoadSelection_Valid(t *testing.T) {
	src := `
system_config:
  set_hostname: true
essential_apps:
  git: true
  vim: false
internet_apps:
  browsers:
    firefox:
      selected: true
      installation_type: flatpak
custom_script: |
  echo done
`
	path := writeFile(t, t.TempDir(), "selection.yaml", src)
	sel := LoadSelection(path)

	if !sel.SystemConfig["set_hostname"] {
		t.Error("set_hostname not selected")
	}
	if !sel.EssentialApps["git"] || sel.EssentialApps["vim"] {
		t.Errorf("essential apps = %v", sel.EssentialApps)
	}
	category, ok := sel.Categories.Get("internet_apps")
	if !ok {
		t.Fatal("internet_apps missing from selection")
	}
	apps, ok := category.Get("browsers")
	if !ok {
		t.Fatal("browsers missing from selection")
	}
	firefox, _ := apps.Get("firefox")
	if !firefox.Selected || firefox.InstallationType != "flatpak" {
		t.Errorf("firefox selection = %+v", firefox)
	}
	if sel.CustomScript != "echo done\n" {
		t.Errorf("CustomScript = %q", sel.CustomScript)
	}
}
