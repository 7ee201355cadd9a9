package main

// vertex shader: model/view/projection transform with UV scaling
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale = vec2(1.0, 1.0);

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    gl_Position = projection * view * worldPos;
    fragPos     = worldPos.xyz;
    fragNormal  = mat3(transpose(inverse(model))) * inNormal;
    fragUV      = inUV * UVscale;
}
`

// fragment shader: Phong shading with four point lights, a per-object
// material, and an optional texture in place of the flat object color
const fragSrc = `
#version 410 core
in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

#define TOTAL_LIGHTS 4

struct LightSource {
    vec3  position;
    vec3  ambientColor;
    vec3  diffuseColor;
    vec3  specularColor;
    float focalStrength;
    float specularIntensity;
};

struct Material {
    vec3  ambientColor;
    float ambientStrength;
    vec3  diffuseColor;
    vec3  specularColor;
    float shininess;
};

uniform bool        bUseTexture  = false;
uniform bool        bUseLighting = false;
uniform vec4        objectColor  = vec4(1.0);
uniform sampler2D   objectTexture;
uniform vec3        viewPosition;
uniform LightSource lightSources[TOTAL_LIGHTS];
uniform Material    material;

vec3 shade(LightSource light, vec3 baseColor, vec3 normal, vec3 viewDir) {
    vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;

    vec3  lightDir = normalize(light.position - fragPos);
    float diff     = max(dot(normal, lightDir), 0.0);
    vec3  diffuse  = diff * light.diffuseColor * material.diffuseColor;

    vec3  reflectDir = reflect(-lightDir, normal);
    float spec       = pow(max(dot(viewDir, reflectDir), 0.0), light.focalStrength);
    vec3  specular   = light.specularIntensity * spec * light.specularColor * material.specularColor;

    return (ambient + diffuse) * baseColor + specular;
}

void main() {
    vec4 base = bUseTexture ? texture(objectTexture, fragUV) : objectColor;

    if (!bUseLighting) {
        outColor = base;
        return;
    }

    vec3 normal  = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragPos);

    vec3 color = vec3(0.0);
    for (int i = 0; i < TOTAL_LIGHTS; i++) {
        color += shade(lightSources[i], base.rgb, normal, viewDir);
    }

    outColor = vec4(color, base.a);
}
`
